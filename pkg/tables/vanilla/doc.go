// Package vanilla holds typed rows for the 1.12 client tables.
//
// Tables of this era key their rows with signed 32-bit integers and use the
// 8-locale LocalizedString. Every row type here implements dbc.Row and
// dbc.Keyed, and has a matching entry in the embedded schema.yaml.
package vanilla
