package get_menu_image

import "context"

type MenuService interface {
	GetImage(ctx context.Context, id int64) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
