package domain

import "errors"

var (
	ErrSlideNotFound         = errors.New("slide not found")
	ErrDuplicateSlide        = errors.New("duplicate slide id")
	ErrDuplicateAchievement  = errors.New("duplicate achievement id")
	ErrInvalidContent        = errors.New("invalid content")
	ErrUnsupportedEffectKind = errors.New("unsupported effect kind")
	ErrUnsupportedActionKind = errors.New("unsupported action kind")
	ErrUnsupportedPopupKind  = errors.New("unsupported popup kind")
)
