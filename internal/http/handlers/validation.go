package handlers

import (
	"strings"
)

// MaxBallWeight is the heaviest ball, in pounds, the governing bodies allow.
const MaxBallWeight = 16

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Name is required"})
	}
	if p.Weight < 0 || p.Weight > MaxBallWeight {
		errs = append(errs, ProductValidationError{Field: "Weight", Description: "Weight must be between 0 and 16"})
	}
	if p.RG < 0 || p.Diff < 0 {
		errs = append(errs, ProductValidationError{Field: "RG", Description: "RG and Diff cannot be negative"})
	}
	if p.Price < 0 {
		errs = append(errs, ProductValidationError{Field: "Price", Description: "Price cannot be negative"})
	}
	if p.CategoryId <= 0 {
		errs = append(errs, ProductValidationError{Field: "CategoryId", Description: "CategoryId must be a positive integer"})
	}
	return errs
}

func validateNewProduct(p ProductRequest) []ProductValidationError {
	errs := validateProduct(p)
	if p.Id <= 0 {
		errs = append([]ProductValidationError{{Field: "Id", Description: "Id must be a positive integer"}}, errs...)
	}
	return errs
}
