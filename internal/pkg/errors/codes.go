package errors

import "net/http"

var (
	ErrValidation = New(
		"VALIDATION_ERROR",
		"Request fields are missing or malformed",
		http.StatusBadRequest,
	)

	ErrUnsupportedBookingType = New(
		"UNSUPPORTED_BOOKING_TYPE",
		"Unknown booking type",
		http.StatusBadRequest,
	)

	ErrOutOfRange = New(
		"OUT_OF_RANGE",
		"Value is outside the allowed range",
		http.StatusBadRequest,
	)

	ErrLocationNotServiceable = New(
		"LOCATION_NOT_SERVICEABLE",
		"Pickup or dropoff is outside the operating area",
		http.StatusUnprocessableEntity,
	)

	ErrRouteProvider = New(
		"ROUTE_PROVIDER_ERROR",
		"Route distance provider request failed",
		http.StatusBadGateway,
	)

	ErrNoRouteFound = New(
		"ROUTE_PROVIDER_ERROR",
		"No drivable route found between the requested points",
		http.StatusUnprocessableEntity,
	)

	ErrVehicleNotFound = New(
		"VEHICLE_NOT_FOUND",
		"Requested vehicle class is not in the catalog",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
