package serverutils

type APIResponse[T any] struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

type APIErrorBody struct {
	Status string `json:"status"`
	Code   string `json:"code"`
	Error  string `json:"error"`
}

func SuccessResponse[T any](message string, data T) APIResponse[T] {
	return APIResponse[T]{
		Status:  "success",
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code string, message string) APIErrorBody {
	return APIErrorBody{
		Status: "error",
		Code:   code,
		Error:  message,
	}
}
