// Package wrath holds typed rows for the 3.3.5 client tables.
//
// Tables of this era key their rows with unsigned 32-bit integers and use
// the 16-locale ExtendedLocalizedString.
package wrath
