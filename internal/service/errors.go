package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid            = errors.New("参数错误")
	ErrMessageTooLong          = errors.New("留言内容超出长度限制")
	ErrFileTooLarge            = errors.New("文件大小超出限制")
	ErrFileNotSupported        = errors.New("不支持的文件类型")
	ErrSubmissionNotFound      = errors.New("提交记录不存在")
	ErrModeratorExist          = errors.New("邮箱已注册")
	ErrPasswordIncorrect       = errors.New("邮箱或密码错误")
	ErrMissingLoginCredentials = errors.New("缺少登录凭据")
	UnauthorizedError          = errors.New("权限不足")
	UnExpectedError            = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:            BadRequest,
	ErrMessageTooLong:          BadRequest,
	ErrFileTooLarge:            BadRequest,
	ErrFileNotSupported:        BadRequest,
	ErrSubmissionNotFound:      NotFound,
	ErrModeratorExist:          BadRequest,
	ErrPasswordIncorrect:       Unauthorized,
	ErrMissingLoginCredentials: Unauthorized,
	UnauthorizedError:          Unauthorized,
	UnExpectedError:            InternalServerError,
}
