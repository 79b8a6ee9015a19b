package dataconv

import (
	"errors"
	"fmt"

	"github.com/wolfsoftware/go-dataconv/format"
	"github.com/wolfsoftware/go-dataconv/ir"
	"github.com/wolfsoftware/go-dataconv/xmltree"
)

var (
	ErrConvert        = errors.New("data conversion error")
	ErrClassification = fmt.Errorf("%w: classification", ErrConvert)
	ErrUnsupported    = fmt.Errorf("%w: conversion unsupported", ErrConvert)
	ErrParse          = fmt.Errorf("%w: parse", ErrConvert)
	ErrSecurity       = fmt.Errorf("%w: security rejection", ErrConvert)
)

// convErr folds subpackage sentinels into the package taxonomy.
func convErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrConvert):
		return err
	case errors.Is(err, xmltree.ErrSecurity):
		return fmt.Errorf("%w: %w", ErrSecurity, err)
	case errors.Is(err, xmltree.ErrParse), errors.Is(err, ir.ErrParse):
		return fmt.Errorf("%w: %w", ErrParse, err)
	case errors.Is(err, format.ErrBadFormat):
		return fmt.Errorf("%w: %w", ErrClassification, err)
	default:
		return fmt.Errorf("%w: %w", ErrConvert, err)
	}
}
