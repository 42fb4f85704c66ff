package game

import "errors"

var (
	// ErrStorageUnavailable 持久化存储读写失败
	ErrStorageUnavailable = errors.New("score storage unavailable")

	errNoSceneFactory = errors.New("scene factory not set")
)
