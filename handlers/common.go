package handlers

type Response struct {
	Error string `json:"error"`
}

var (
	// Predefined errors
	BadRequestResponse    = Response{"请求格式不正确"}
	MissingFieldsResponse = Response{"缺少必填字段"}
	InternalErrorResponse = Response{"服务器内部错误"}
)
