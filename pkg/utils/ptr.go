package utils

func StringPtr(s string) *string { return &s }

func Float64Ptr(f float64) *float64 { return &f }
