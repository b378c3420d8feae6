package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// ===============================
// Business code -> HTTP
// ===============================

type mapping struct {
	status  int
	message string
}

var codes = map[string]mapping{
	"invalid_request":        {http.StatusBadRequest, "Invalid request."},
	"invalid_price":          {http.StatusBadRequest, "Price must be greater than zero."},
	"invalid_status":         {http.StatusBadRequest, "Unknown booking status."},
	"invalid_rating":         {http.StatusBadRequest, "Rating must be between 1 and 5."},
	"invalid_availability":   {http.StatusBadRequest, "Availability is not a valid weekly schedule."},
	"invalid_services":       {http.StatusBadRequest, "Services list is not valid."},
	"invalid_date_or_time":   {http.StatusBadRequest, "Invalid date or time."},
	"invalid_photo":          {http.StatusBadRequest, "Photo must be an image data URI."},
	"missing_style":          {http.StatusBadRequest, "Choose a service or describe a style."},
	"appointment_in_past":    {http.StatusBadRequest, "Appointment must be in the future."},
	"outside_availability":   {http.StatusBadRequest, "Barber is not available at that time."},
	"service_not_found":      {http.StatusBadRequest, "Service not offered by this barber."},
	"not_a_barber":           {http.StatusBadRequest, "User is not a barber."},
	"invalid_email":          {http.StatusBadRequest, "Email address is not valid."},
	"invalid_role":           {http.StatusBadRequest, "Role must be customer or barber."},
	"weak_password":          {http.StatusBadRequest, "Password must have at least 6 characters."},
	"invalid_credentials":    {http.StatusUnauthorized, "Invalid email or password."},
	"unauthorized":           {http.StatusUnauthorized, "Authentication required."},
	"booking_not_found":      {http.StatusNotFound, "Booking not found."},
	"barber_not_found":       {http.StatusNotFound, "Barber not found."},
	"user_not_found":         {http.StatusNotFound, "User not found."},
	"forbidden":              {http.StatusForbidden, "Not allowed."},
	"booking_conflict":       {http.StatusConflict, "Booking was changed by someone else, reload and try again."},
	"invalid_transition":     {http.StatusConflict, "Booking cannot move to that status."},
	"booking_not_completed":  {http.StatusConflict, "Only completed bookings can be reviewed."},
	"review_already_exists":  {http.StatusConflict, "This booking was already reviewed."},
	"email_already_exists":   {http.StatusConflict, "Email already registered."},
	"no_image_returned":      {http.StatusBadGateway, "The image service returned no image."},
	"ai_unavailable":         {http.StatusBadGateway, "The hairstyle service is unavailable."},
	"payments_unavailable":   {http.StatusServiceUnavailable, "Subscriptions are not configured."},
	"storage_unavailable":    {http.StatusServiceUnavailable, "Photo storage is not configured."},
	"subscription_not_found": {http.StatusNotFound, "Subscription not found."},
}

// FromError writes the response matching err. Unknown errors become a
// generic 500 with fallbackCode.
func FromError(c *gin.Context, err error, fallbackCode string) {
	code := CodeOf(err)
	if m, ok := codes[code]; ok {
		Write(c, m.status, code, m.message)
		return
	}
	Internal(c, fallbackCode, "Something went wrong, try again.")
}

// StatusOf reports the HTTP status FromError would use for code.
func StatusOf(code string) int {
	if m, ok := codes[code]; ok {
		return m.status
	}
	return http.StatusInternalServerError
}
