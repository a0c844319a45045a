package cleaning

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда для бронирования нет записи графика уборки
	ErrScheduleNotFound = errors.New("cleaning.repository: cleaning schedule not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("cleaning.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("cleaning.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("cleaning.repository: failed to scan row")
)
