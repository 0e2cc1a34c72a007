package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAccountNumber(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid", input: "123456789"},
		{name: "empty", input: "", wantErr: true},
		{name: "too short", input: "12345678", wantErr: true},
		{name: "too long", input: "1234567890", wantErr: true},
		{name: "letters", input: "12345678a", wantErr: true},
		{name: "whitespace", input: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAccountNumber(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePIN(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid", input: "1234"},
		{name: "empty", input: "", wantErr: true},
		{name: "too short", input: "123", wantErr: true},
		{name: "too long", input: "12345", wantErr: true},
		{name: "letters", input: "12ab", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePIN(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "whole units", input: "200"},
		{name: "two decimals", input: "9.50"},
		{name: "trailing zeros", input: "9.5000"},
		{name: "empty", input: "", wantErr: true},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative", input: "-20", wantErr: true},
		{name: "explicit plus sign", input: "+5", wantErr: true},
		{name: "exponent notation", input: "1e3", wantErr: true},
		{name: "sub-cent value", input: "1.005", wantErr: true},
		{name: "not a number", input: "ten", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAmount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
