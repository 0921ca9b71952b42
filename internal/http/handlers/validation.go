package handlers

import (
	"strings"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(p.Codigo) == "" {
		errs = append(errs, ProductValidationError{Field: "Codigo", Description: "Codigo is required"})
	}
	if strings.TrimSpace(p.Descripcion) == "" {
		errs = append(errs, ProductValidationError{Field: "Descripcion", Description: "Descripcion is required"})
	}
	if p.Lote != "" && p.FechaExpiracion == "" {
		errs = append(errs, ProductValidationError{Field: "FechaExpiracion", Description: "FechaExpiracion is required when Lote is set"})
	}
	return errs
}
