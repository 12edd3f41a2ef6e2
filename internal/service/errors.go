package service

// InputError 参数缺失、为空或格式错误（400）
type InputError struct {
	Message string
}

func (e *InputError) Error() string { return e.Message }

// NotFoundError 查询合法但没有匹配结果（404）
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// UnexpectedQueryError 全量列表查询没有返回任何数据（500）
type UnexpectedQueryError struct {
	Message string
}

func (e *UnexpectedQueryError) Error() string { return e.Message }

const (
	msgTitleRequired    = "You must provide a title"
	msgYearRequired     = "You must provide a year"
	msgDirectorRequired = "You must provide a director"
	msgActorsRequired   = "You must provide one actor or more"
	msgCastRequired     = "You must provide the cast"
	msgInvalidTop       = "invalid value for top"
	msgMoviesNotFound   = "Movie(s) not found!"
	msgListFailed       = "Fail to return movies"
)
