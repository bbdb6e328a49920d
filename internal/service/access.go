package service

import (
	"github.com/mmynk/messbook/internal/models"
	"github.com/mmynk/messbook/pkg/api/apiconnect"
)

// AccessRules lists the minimum role per procedure. Procedures not listed
// are open to every authenticated member.
var AccessRules = map[string]models.Role{
	apiconnect.PeriodServiceCreatePeriodProcedure: models.RoleAdmin,

	apiconnect.LedgerServiceRecordAttendanceProcedure: models.RoleStaff,
	apiconnect.LedgerServiceAddAttendanceProcedure:    models.RoleStaff,
	apiconnect.LedgerServiceDeleteAttendanceProcedure: models.RoleStaff,
	apiconnect.LedgerServiceAddExpenseProcedure:       models.RoleStaff,
	apiconnect.LedgerServiceUpdateExpenseProcedure:    models.RoleStaff,
	apiconnect.LedgerServiceDeleteExpenseProcedure:    models.RoleStaff,
	apiconnect.LedgerServiceRecordPaymentProcedure:    models.RoleStaff,

	apiconnect.HouseholdServiceCreateUserProcedure:     models.RoleAdmin,
	apiconnect.HouseholdServiceUpdateSettingsProcedure: models.RoleAdmin,

	apiconnect.MenuServiceCreateMenuItemProcedure: models.RoleStaff,
	apiconnect.MenuServiceSetDailyMenuProcedure:   models.RoleStaff,
}
