package collections

import (
	"github.com/habibieebhy/fieldforce-backend/internal/models"
	"github.com/habibieebhy/fieldforce-backend/internal/query"
)

// DealersName is special-cased in routing: dealer writes go through the
// geofence consistency protocol instead of the generic CRUD handlers.
const DealersName = "dealers"

// All is the full set of collection descriptors. Every per-collection
// difference (filters, search columns, date field, sort whitelist,
// patch whitelist) lives in this table; the engine is shared.
var All = []*query.Descriptor{
	Dealers,
	dailyVisitReports,
	technicalVisitReports,
	permanentJourneyPlans,
	salesOrders,
	salesmanAttendance,
	leaveApplications,
	salesReports,
	collectionReports,
	competitionReports,
	brands,
}

// ByName returns the descriptor for a collection, or nil.
func ByName(name string) *query.Descriptor {
	for _, d := range All {
		if d.Name == name {
			return d
		}
	}
	return nil
}

var Dealers = &query.Descriptor{
	Name:   DealersName,
	Model:  func() interface{} { return new(models.Dealer) },
	Slice:  func() interface{} { return new([]models.Dealer) },
	IDKind: query.IDString,
	Scalars: []query.ScalarFilter{
		{Param: "userId", Column: "user_id", Kind: query.UUID},
		{Param: "region", Column: "region", Kind: query.String},
		{Param: "area", Column: "area", Kind: query.String},
		{Param: "pinCode", Column: "pin_code", Kind: query.String},
		{Param: "verificationStatus", Column: "verification_status", Kind: query.String},
	},
	Searchable: []string{"name", "address", "area"},
	DateColumn: "created_at",
	Arrays: []query.ArrayFilter{
		{Param: "brand", AnyParam: "anyBrand", Column: "brand_selling"},
	},
	Parent: &query.ParentFilter{
		Param:            "parentDealerId",
		Column:           "parent_dealer_id",
		OnlyParentsParam: "onlyParents",
		OnlySubsParam:    "onlySubs",
	},
	SortKeys: map[string]string{
		"name":           "name",
		"region":         "region",
		"totalPotential": "total_potential",
		"createdAt":      "created_at",
	},
	DefaultSort: "created_at",
}

var dailyVisitReports = &query.Descriptor{
	Name:   "daily-visit-reports",
	Model:  func() interface{} { return new(models.DailyVisitReport) },
	Slice:  func() interface{} { return new([]models.DailyVisitReport) },
	IDKind: query.IDNumeric,
	Scalars: []query.ScalarFilter{
		{Param: "userId", Column: "user_id", Kind: query.UUID},
		{Param: "dealerId", Column: "dealer_id", Kind: query.UUID},
		{Param: "visitType", Column: "visit_type", Kind: query.String},
		{Param: "dealerType", Column: "dealer_type", Kind: query.String},
	},
	Searchable: []string{"location", "feedback_from_dealer"},
	DateColumn: "report_date",
	SortKeys: map[string]string{
		"reportDate": "report_date",
		"createdAt":  "created_at",
	},
	DefaultSort: "report_date",
	Patchable: []string{
		"feedbackFromDealer", "solutionBySalesperson",
		"todayOrderMt", "todayCollectionRupees", "checkOutTime",
	},
}

var technicalVisitReports = &query.Descriptor{
	Name:   "technical-visit-reports",
	Model:  func() interface{} { return new(models.TechnicalVisitReport) },
	Slice:  func() interface{} { return new([]models.TechnicalVisitReport) },
	IDKind: query.IDNumeric,
	Scalars: []query.ScalarFilter{
		{Param: "userId", Column: "user_id", Kind: query.UUID},
		{Param: "visitType", Column: "visit_type", Kind: query.String},
		{Param: "serviceType", Column: "service_type", Kind: query.String},
		{Param: "conversionStatus", Column: "conversion_status", Kind: query.String},
	},
	Searchable: []string{"site_name", "clients_remarks"},
	DateColumn: "report_date",
	SortKeys: map[string]string{
		"reportDate": "report_date",
		"createdAt":  "created_at",
	},
	DefaultSort: "report_date",
	Patchable: []string{
		"clientsRemarks", "salespersonRemarks", "conversionStatus", "checkOutTime",
	},
}

var permanentJourneyPlans = &query.Descriptor{
	Name:   "permanent-journey-plans",
	Model:  func() interface{} { return new(models.PermanentJourneyPlan) },
	Slice:  func() interface{} { return new([]models.PermanentJourneyPlan) },
	IDKind: query.IDString,
	Scalars: []query.ScalarFilter{
		{Param: "userId", Column: "user_id", Kind: query.UUID},
		{Param: "createdById", Column: "created_by_id", Kind: query.UUID},
		{Param: "status", Column: "status", Kind: query.String},
	},
	Searchable: []string{"area_to_be_visited", "description"},
	DateColumn: "plan_date",
	SortKeys: map[string]string{
		"planDate":  "plan_date",
		"createdAt": "created_at",
	},
	DefaultSort: "plan_date",
	Patchable: []string{
		"status", "description", "areaToBeVisited", "completedAt",
	},
}

var salesOrders = &query.Descriptor{
	Name:   "sales-orders",
	Model:  func() interface{} { return new(models.SalesOrder) },
	Slice:  func() interface{} { return new([]models.SalesOrder) },
	IDKind: query.IDString,
	Scalars: []query.ScalarFilter{
		{Param: "salesmanId", Column: "salesman_id", Kind: query.UUID},
		{Param: "dealerId", Column: "dealer_id", Kind: query.UUID},
		{Param: "unit", Column: "unit", Kind: query.String},
		{Param: "quantity", Column: "quantity", Kind: query.Number},
	},
	Searchable: []string{"remarks"},
	DateColumn: "order_date",
	SortKeys: map[string]string{
		"orderDate":  "order_date",
		"orderTotal": "order_total",
		"createdAt":  "created_at",
	},
	DefaultSort: "created_at",
	Patchable: []string{
		"quantity", "orderTotal", "advancePayment", "pendingPayment",
		"estimatedDelivery", "remarks",
	},
}

var salesmanAttendance = &query.Descriptor{
	Name:   "salesman-attendance",
	Model:  func() interface{} { return new(models.SalesmanAttendance) },
	Slice:  func() interface{} { return new([]models.SalesmanAttendance) },
	IDKind: query.IDNumeric,
	Scalars: []query.ScalarFilter{
		{Param: "userId", Column: "user_id", Kind: query.UUID},
		{Param: "attendanceDate", Column: "attendance_date", Kind: query.Date},
	},
	Searchable: []string{"location_name"},
	DateColumn: "attendance_date",
	SortKeys: map[string]string{
		"attendanceDate": "attendance_date",
		"createdAt":      "created_at",
	},
	DefaultSort: "attendance_date",
	Patchable: []string{
		"outTimeTimestamp", "outTimeLatitude", "outTimeLongitude", "locationName",
	},
}

var leaveApplications = &query.Descriptor{
	Name:   "leave-applications",
	Model:  func() interface{} { return new(models.LeaveApplication) },
	Slice:  func() interface{} { return new([]models.LeaveApplication) },
	IDKind: query.IDNumeric,
	Scalars: []query.ScalarFilter{
		{Param: "userId", Column: "user_id", Kind: query.UUID},
		{Param: "status", Column: "status", Kind: query.String},
		{Param: "leaveType", Column: "leave_type", Kind: query.String},
	},
	Searchable: []string{"reason"},
	DateColumn: "start_date",
	SortKeys: map[string]string{
		"startDate": "start_date",
		"createdAt": "created_at",
	},
	DefaultSort: "created_at",
	Patchable: []string{
		"status", "adminRemarks", "reason", "startDate", "endDate",
	},
}

var salesReports = &query.Descriptor{
	Name:   "sales-reports",
	Model:  func() interface{} { return new(models.SalesReport) },
	Slice:  func() interface{} { return new([]models.SalesReport) },
	IDKind: query.IDNumeric,
	Scalars: []query.ScalarFilter{
		{Param: "userId", Column: "user_id", Kind: query.UUID},
	},
	DateColumn: "report_date",
	SortKeys: map[string]string{
		"reportDate": "report_date",
		"createdAt":  "created_at",
	},
	DefaultSort: "report_date",
	Patchable: []string{
		"monthlyTarget", "tillDateAchievement",
		"yesterdayTarget", "yesterdayAchievement",
	},
}

var collectionReports = &query.Descriptor{
	Name:   "collection-reports",
	Model:  func() interface{} { return new(models.CollectionReport) },
	Slice:  func() interface{} { return new([]models.CollectionReport) },
	IDKind: query.IDString,
	Scalars: []query.ScalarFilter{
		{Param: "userId", Column: "user_id", Kind: query.UUID},
		{Param: "dealerId", Column: "dealer_id", Kind: query.UUID},
		{Param: "paymentMode", Column: "payment_mode", Kind: query.String},
	},
	Searchable: []string{"remarks"},
	DateColumn: "collected_on",
	SortKeys: map[string]string{
		"collectedOn":     "collected_on",
		"collectedAmount": "collected_amount",
		"createdAt":       "created_at",
	},
	DefaultSort: "collected_on",
	Patchable: []string{
		"collectedAmount", "paymentMode", "remarks",
	},
}

var competitionReports = &query.Descriptor{
	Name:   "competition-reports",
	Model:  func() interface{} { return new(models.CompetitionReport) },
	Slice:  func() interface{} { return new([]models.CompetitionReport) },
	IDKind: query.IDNumeric,
	Scalars: []query.ScalarFilter{
		{Param: "userId", Column: "user_id", Kind: query.UUID},
		{Param: "brandName", Column: "brand_name", Kind: query.String},
		{Param: "schemesYesNo", Column: "schemes_yes_no", Kind: query.String},
	},
	Searchable: []string{"brand_name", "remarks"},
	DateColumn: "report_date",
	SortKeys: map[string]string{
		"reportDate": "report_date",
		"createdAt":  "created_at",
	},
	DefaultSort: "report_date",
	Patchable: []string{
		"billing", "nod", "retail", "schemesYesNo", "avgSchemeCost", "remarks",
	},
}

var brands = &query.Descriptor{
	Name:   "brands",
	Model:  func() interface{} { return new(models.Brand) },
	Slice:  func() interface{} { return new([]models.Brand) },
	IDKind: query.IDNumeric,
	Scalars: []query.ScalarFilter{
		{Param: "name", Column: "name", Kind: query.String},
	},
	Searchable: []string{"name"},
	SortKeys: map[string]string{
		"name":      "name",
		"createdAt": "created_at",
	},
	DefaultSort: "created_at",
	Patchable:   []string{"name"},
}
