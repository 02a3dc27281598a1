// Package intakeservice implements the CLAW airdrop claim intake pipeline.
//
// The module owns the submission registry and exposes command/query
// handlers for claim intake, email verification, batch distribution and
// operator listing, plus the storage, mail and transport adapters those
// commands depend on.
package intakeservice
