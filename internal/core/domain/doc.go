// Package domain contains the core business entities for Solace:
// quotes, journal entries, guided exercises, progress tracking, and
// reminders. Domain types carry no persistence or transport concerns.
package domain
