package constants

// Roles
const (
	ROLE_ADMIN    = "ADMIN"
	ROLE_HR       = "HR"
	ROLE_MANAGER  = "MANAGER"
	ROLE_EMPLOYEE = "EMPLOYEE"
)

var Roles = []string{ROLE_ADMIN, ROLE_HR, ROLE_MANAGER, ROLE_EMPLOYEE}

// Leave types
const (
	LEAVE_ANNUAL    = "annual"
	LEAVE_SICK      = "sick"
	LEAVE_CASUAL    = "casual"
	LEAVE_EMERGENCY = "emergency"
	LEAVE_MATERNITY = "maternity"
	LEAVE_PATERNITY = "paternity"
)

var LeaveTypes = []string{LEAVE_ANNUAL, LEAVE_SICK, LEAVE_CASUAL, LEAVE_EMERGENCY, LEAVE_MATERNITY, LEAVE_PATERNITY}

// Leave request statuses
const (
	STATUS_PENDING  = "pending"
	STATUS_APPROVED = "approved"
	STATUS_REJECTED = "rejected"
)

// Probation statuses
const (
	PROBATION_NONE       = "none"
	PROBATION_ACTIVE     = "active"
	PROBATION_EXTENDED   = "extended"
	PROBATION_COMPLETED  = "completed"
	PROBATION_TERMINATED = "terminated"
)

var ProbationStatuses = []string{PROBATION_NONE, PROBATION_ACTIVE, PROBATION_EXTENDED, PROBATION_COMPLETED, PROBATION_TERMINATED}

// Employee classifications (legacy policies carry an empty classification)
const (
	CLASS_ONSHORE  = "onshore"
	CLASS_OFFSHORE = "offshore"
)

// Accrual: straight-line per-day share of the annual grant.
const DaysPerYear = 365.0

// Hours in a working day, used for hour-based short leave.
const HoursPerDay = 8.0

// Placeholder flat daily rate (VND-free this time: plain currency units) used
// for salary deductions until real payroll data is wired in.
const DefaultDailyRate = 100.0

// NoticeDays is the minimum advance notice per leave type. Types missing
// here (sick, emergency) require none.
var NoticeDays = map[string]int{
	LEAVE_ANNUAL:    7,
	LEAVE_CASUAL:    1,
	LEAVE_MATERNITY: 30,
	LEAVE_PATERNITY: 14,
}

// MaxConsecutiveDays is the recommended ceiling per leave type; crossing it
// only warns.
var MaxConsecutiveDays = map[string]float64{
	LEAVE_ANNUAL:    14,
	LEAVE_SICK:      10,
	LEAVE_CASUAL:    3,
	LEAVE_EMERGENCY: 5,
	LEAVE_MATERNITY: 90,
	LEAVE_PATERNITY: 30,
}

// EmergencyKeywords must appear in the reason of an emergency leave, else a
// warning is attached.
var EmergencyKeywords = []string{"emergency", "urgent", "critical", "immediate", "family", "medical"}

// Request priorities (display only)
const (
	PRIORITY_HIGH   = "high"
	PRIORITY_MEDIUM = "medium"
	PRIORITY_LOW    = "low"
)

// Notification types
const (
	NOTIFY_LEAVE_SUBMITTED = "leave_submitted"
	NOTIFY_LEAVE_DECIDED   = "leave_decided"
	NOTIFY_ACCRUAL         = "accrual_digest"
)

// Messages
const (
	ERROR_INPUT               = "Invalid input"
	ERROR_INTERNAL_ERROR      = "Internal server error"
	DATA_INPUT_IS_NOT_NUMBER  = "Parameter must be a number"
	NOT_ADMIN                 = "Admin only"
	NOT_MANAGER               = "Manager or HR only"
	MISSING_LOGIN_INPUT       = "Username and password are required"
	INVALID_USERNAME          = "Username does not exist"
	INVALID_PASSWORD          = "Wrong password"
	ACCOUNT_NOT_ACTIVE        = "Account is deactivated"
	EMPLOYEE_NOT_FOUND        = "Employee not found"
	LEAVE_NOT_FOUND           = "Leave request not found"
	END_BEFORE_START          = "End date cannot be before start date"
	NO_ACTIVE_POLICY          = "No active leave policy for this leave type"
	FAILED_TO_VALIDATE        = "Failed to validate leave request"
	FAILED_TO_CALC_BALANCE    = "Failed to calculate leave balance"
	ONLY_PENDING_CANCELLABLE  = "Only pending requests can be cancelled"
	ONLY_PENDING_DECIDABLE    = "Request has already been decided"
)
