package cleaningnotifier

import "errors"

var (
	// ErrMarshal возвращается, когда событие не удалось сериализовать
	ErrMarshal = errors.New("cleaningnotifier: failed to marshal event")

	// ErrPublish возвращается, когда события не удалось отправить в Kafka
	ErrPublish = errors.New("cleaningnotifier: failed to publish events")
)
