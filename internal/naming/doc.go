// Package naming computes the new names for album folders and track files
// whose titles are written in Cyrillic.
//
// Album folders follow "YYYY - Title" and become "YYYY - Lat (Title)".
// Track files follow "NN - Title" and become "NN - Lat (Title)", except for
// cover versions, which keep the cover annotation as a separate group:
//
//	03 - Группа - Песня (cover)         → 03 - Gruppa - Pesnya (Группа - Песня) (cover)
//	05 - Песня (Группа cover)           → 05 - Pesnya (Gruppa cover) (Песня (Группа cover))
//
// Every function is pure; a false result means "leave the name alone".
package naming
