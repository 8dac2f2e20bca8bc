package constvars

// Route paths below the /{prefix}/{version} mount point.
const (
	RoutePayments      = "/payments"
	RouteBookings      = "/bookings"
	RouteNotifications = "/notifications"
	RouteReminders     = "/reminders"

	RoutePaymentOrders            = "/orders"
	RoutePaymentVerify            = "/verify"
	RouteBookingConfirm           = "/confirm"
	RouteNotificationConfirmation = "/confirmation"
	RouteNotificationReminder     = "/reminder"
	RouteReminderSchedule         = "/schedule"

	RouteHealthz = "/healthz"
)
