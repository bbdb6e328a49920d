// Package models defines the core domain models for messbook.
//
// # Ledger Models
//
// The settlement engine reads four kinds of ledger rows:
//   - Period: a named billing month (month name + year)
//   - AttendanceRecord: one user eating one meal slot on one date
//   - Expense: a shared purchase attributed to the person who paid
//   - Payment: a direct cash contribution into the shared pool
//
// SettlementReport is derived from those rows and never persisted.
//
// # Household Models
//
// User, MenuItem, DailyMenu and Settings back the CRUD screens around the
// ledger. They carry no settlement logic.
//
// # Enumerations
//
// Role, MealType and Category are persisted as free text. Each has a Parse
// function that fixes the decoding policy at the boundary:
//   - Role: unknown values decode to RoleStudent
//   - Category: unknown values decode to CategoryOther
//   - MealType: unknown values are rejected with ErrInvalidInput
//
// # Money
//
// All amounts are decimal.Decimal. Nothing in this package rounds; rounding
// happens only when a report is rendered.
package models
