package model

import "errors"

var (
	ErrBookNotFound   = errors.New("book not found")
	ErrInvalidSort    = errors.New("invalid sort column")
	ErrInvalidKeyword = errors.New("keyword must not be blank")
)
