package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrStillLocked.Error() != "can't withdraw when repeat is open" {
		t.Errorf("ErrStillLocked has unexpected message: %s", ErrStillLocked.Error())
	}
	if ErrInvalidSymbol.Error() != "invalid value: invalid symbol name" {
		t.Errorf("ErrInvalidSymbol has unexpected message: %s", ErrInvalidSymbol.Error())
	}
}

func TestErrorHierarchy(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		parent error
	}{
		{"InvalidSymbol", ErrInvalidSymbol, ErrInvalidValue},
		{"InvalidAccount", ErrInvalidAccount, ErrInvalidValue},
		{"InvalidDuration", ErrInvalidDuration, ErrInvalidValue},
		{"RecordNotFound", ErrRecordNotFound, ErrNotFound},
		{"AssetNotFound", ErrAssetNotFound, ErrNotFound},
		{"DuplicateAsset", ErrDuplicateAsset, ErrDuplicateEntry},
		{"DuplicateRecord", ErrDuplicateRecord, ErrDuplicateEntry},
		{"Forbidden", ErrForbidden, ErrUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if !errors.Is(tc.err, tc.parent) {
				t.Errorf("%v should match parent %v", tc.err, tc.parent)
			}
		})
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidValue", ErrInvalidValue, 4001},
		{"InvalidSymbol", ErrInvalidSymbol, 4002},
		{"InvalidAccount", ErrInvalidAccount, 4003},
		{"InvalidDuration", ErrInvalidDuration, 4004},
		{"Unauthorized", ErrUnauthorized, 4010},
		{"Forbidden", ErrForbidden, 4030},
		{"RecordNotFound", ErrRecordNotFound, 4041},
		{"AssetNotFound", ErrAssetNotFound, 4042},
		{"DuplicateAsset", ErrDuplicateAsset, 4090},
		{"NoOp", ErrNoOp, 4091},
		{"Expired", ErrExpired, 4092},
		{"UnsupportedAsset", ErrUnsupportedAsset, 4220},
		{"StillLocked", ErrStillLocked, 4230},
		{"NotMature", ErrNotMature, 4231},
		{"LedgerUnavailable", ErrLedgerUnavailable, 5020},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrNotMature), 4231},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestRecordError(t *testing.T) {
	recordErr := NewRecordError("withdraw", "alice", 1700000000, ErrNotMature)

	expectedMsg := "withdraw rejected for record alice@1700000000: record is not due and cannot be withdrawn"
	if recordErr.Error() != expectedMsg {
		t.Errorf("RecordError.Error() = %s, want %s", recordErr.Error(), expectedMsg)
	}

	if !errors.Is(recordErr, ErrNotMature) {
		t.Error("RecordError should unwrap to ErrNotMature")
	}

	fields := LogFields(recordErr)
	if fields["error_type"] != "record_error" {
		t.Errorf("unexpected error_type %v", fields["error_type"])
	}
	if fields["error_code"] != CodeNotMature {
		t.Errorf("unexpected error_code %v", fields["error_code"])
	}
	if fields["owner"] != "alice" {
		t.Errorf("unexpected owner %v", fields["owner"])
	}
}

func TestAssetError(t *testing.T) {
	assetErr := NewAssetError("eosio.token", "4,TOK", ErrUnsupportedAsset)

	if !errors.Is(assetErr, ErrUnsupportedAsset) {
		t.Error("AssetError should unwrap to ErrUnsupportedAsset")
	}
	if ErrorCode(assetErr) != CodeUnsupportedAsset {
		t.Errorf("unexpected code %d", ErrorCode(assetErr))
	}

	fields := LogFields(assetErr)
	if fields["issuer"] != "eosio.token" {
		t.Errorf("unexpected issuer %v", fields["issuer"])
	}
}

func TestLogFieldsPlainError(t *testing.T) {
	fields := LogFields(ErrNoOp)
	if fields["error_code"] != CodeNoOp {
		t.Errorf("unexpected error_code %v", fields["error_code"])
	}
}

func TestHelpers(t *testing.T) {
	if !IsNotFoundError(fmt.Errorf("x: %w", ErrRecordNotFound)) {
		t.Error("IsNotFoundError should match wrapped record not found")
	}
	if !IsInvalidValueError(ErrInvalidAccount) {
		t.Error("IsInvalidValueError should match ErrInvalidAccount")
	}
	if !IsDuplicateError(ErrDuplicateRecord) {
		t.Error("IsDuplicateError should match ErrDuplicateRecord")
	}
	if !IsUnauthorizedError(ErrForbidden) {
		t.Error("IsUnauthorizedError should match ErrForbidden")
	}
	if !IsLockedError(ErrStillLocked) || !IsLockedError(ErrNotMature) {
		t.Error("IsLockedError should match locked errors")
	}
	if IsLockedError(ErrExpired) {
		t.Error("IsLockedError should not match ErrExpired")
	}
}
