package handler

import (
	"time"

	"egid/internal/nationalid"
	"egid/internal/nationalid/service"
)

// DecodeResponse is the HTTP response for POST /national-id/decode.
type DecodeResponse struct {
	NationalID  string            `json:"national_id"`
	BirthDate   BirthDateResponse `json:"birthdate"`
	Governorate string            `json:"governorate"`
	Gender      string            `json:"gender"`
	Age         int               `json:"age"`
	DecodedAt   time.Time         `json:"decoded_at"`
}

// BirthDateResponse is the birth date portion of the response.
type BirthDateResponse struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// DecodeErrorResponse extends the error envelope with the decoding failure kind.
type DecodeErrorResponse struct {
	Error            string `json:"error"`
	ErrorKind        string `json:"error_kind"`
	ErrorDescription string `json:"error_description"`
}

// GovernorateResponse is one entry of GET /national-id/governorates.
type GovernorateResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// FromResult converts a decode result to an HTTP response.
func FromResult(result *service.Result) *DecodeResponse {
	b := result.Info.BirthDate
	return &DecodeResponse{
		NationalID: result.NationalID.String(),
		BirthDate: BirthDateResponse{
			Day:   b.Day,
			Month: b.Month,
			Year:  b.Year,
		},
		Governorate: result.Info.Governorate,
		Gender:      string(result.Info.Gender),
		Age:         result.Age,
		DecodedAt:   result.DecodedAt,
	}
}

// ListGovernorates returns the governorate table ordered by code.
func ListGovernorates() []GovernorateResponse {
	codes := nationalid.GovernorateCodes()
	out := make([]GovernorateResponse, 0, len(codes))
	for _, code := range codes {
		name, _ := nationalid.LookupGovernorate(code)
		out = append(out, GovernorateResponse{Code: code, Name: name})
	}
	return out
}
