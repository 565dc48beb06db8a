package apierrors

const (
	MsgUnauthorized     = "unauthorized"
	MsgValidationFailed = "validationFailed"

	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgInvalidStatus      = "invalidStatus"
	MsgUnknownFilter      = "unknownFilter"
	MsgTaskNotFound       = "taskNotFound"
	MsgFailListTasks      = "failListTasks"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailFetchTask      = "failFetchTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"

	MsgInvalidCategoryID      = "invalidCategoryID"
	MsgInvalidCategoryPayload = "invalidCategoryPayload"
	MsgCategoryNotFound       = "categoryNotFound"
	MsgFailListCategories     = "failListCategories"
	MsgFailCreateCategory     = "failCreateCategory"
	MsgFailFetchCategory      = "failFetchCategory"
	MsgFailUpdateCategory     = "failUpdateCategory"
	MsgFailDeleteCategory     = "failDeleteCategory"

	MsgEmailTaken               = "emailTaken"
	MsgInvalidCredentials       = "invalidCredentials"
	MsgPasswordLoginUnavailable = "passwordLoginUnavailable"
	MsgPasswordMismatch         = "passwordMismatch"
	MsgPasswordRequired         = "passwordRequired"
	MsgUserNotFound             = "userNotFound"
	MsgFailRegister             = "failRegister"
	MsgFailLogin                = "failLogin"
	MsgFailProfile              = "failProfile"
	MsgInvalidAvatar            = "invalidAvatar"
	MsgFailAvatar               = "failAvatar"
	MsgFailGitHub               = "failGitHub"
)
