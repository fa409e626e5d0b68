package constvars

const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusAccepted            = 202
	StatusNoContent           = 204
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusPaymentRequired     = 402
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusMethodNotAllowed    = 405
	StatusConflict            = 409
	StatusGone                = 410
	StatusRequestEntityTooBig = 413
	StatusUnsupportedMedia    = 415
	StatusUnprocessableEntity = 422
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

const (
	HeaderAuthorization      = "Authorization"
	HeaderContentType        = "Content-Type"
	HeaderContentDisposition = "Content-Disposition"
	HeaderContentLength      = "Content-Length"
	HeaderXRequestID         = "X-Request-ID"
	HeaderXAPIKey            = "x-api-key"
	HeaderXCallbackToken     = "X-Callback-Token"
	HeaderUserAgent          = "User-Agent"
)

const (
	MIMEApplicationJSON  = "application/json"
	MIMEApplicationPDF   = "application/pdf"
	MIMEApplicationForm  = "application/x-www-form-urlencoded"
	MIMEMultipartForm    = "multipart/form-data"
	MIMETextHTMLUTF8     = "text/html; charset=UTF-8"
	MIMEImagePNG         = "image/png"
	MIMEImageJPEG        = "image/jpeg"
	MIMEApplicationDICOM = "application/dicom"
)

const (
	AuthorizationBearerPrefix = "Bearer "
)

const (
	URLParamID        = "id"
	URLParamPatientID = "patientId"

	QueryParamStatus   = "status"
	QueryParamClinicID = "clinic_id"

	FormFieldFile  = "file"
	FormFieldKind  = "kind"
	FormFieldNotes = "notes"

	MultipartMaxMemory = 32 << 20
)
