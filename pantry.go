// Package pantry provides a personal pantry assistant. It reads grocery
// receipts with a vision model, keeps an inventory in a local database and
// asks the model for recipes that use what is on hand.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, gemini/, goquery/).
package pantry
