// Package campaign defines the campaign record, its closed enumerations and
// the single-campaign rules built on top of them.
//
// # Validation
//
// ValidateCreate and ValidateUpdate evaluate every rule and report every
// violation. An empty ValidationErrors is the success signal; the validators
// never panic and never stop at the first failure.
//
// # Derived values
//
// ProgressOf, IsPlayable, CanModify, Diagnose and the label helpers are pure
// functions of their arguments. Diagnose is the only one that depends on
// time, and it takes the current instant explicitly.
//
// # Lifecycle
//
// New, Apply, StartSession, UpdateStats, Transition and Duplicate return new
// values and never mutate their inputs. Persistence belongs to the caller.
package campaign
