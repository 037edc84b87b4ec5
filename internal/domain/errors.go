package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Registry errors
	ErrMsgUnknownUpgrade = "unknown upgrade"
	ErrMsgNotPurchasable = "upgrade is not purchasable"
	ErrMsgLocked         = "feature is locked"

	// Player errors
	ErrMsgPlayerNotFound = "player not found"
	ErrMsgPlayerExists   = "player already exists"

	// Ledger errors
	ErrMsgInvalidAmount   = "invalid amount"
	ErrMsgUnknownCurrency = "unknown currency"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Content errors
	ErrMsgInvalidContent = "invalid content"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrUnknownUpgrade marks a registry/state mismatch. The engine panics with it;
	// service boundaries return it when resolving user-supplied keys.
	ErrUnknownUpgrade = errors.New(ErrMsgUnknownUpgrade)
	ErrNotPurchasable = errors.New(ErrMsgNotPurchasable)
	ErrLocked         = errors.New(ErrMsgLocked)

	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)
	ErrPlayerExists   = errors.New(ErrMsgPlayerExists)

	ErrInvalidAmount   = errors.New(ErrMsgInvalidAmount)
	ErrUnknownCurrency = errors.New(ErrMsgUnknownCurrency)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	ErrInvalidContent = errors.New(ErrMsgInvalidContent)
)
