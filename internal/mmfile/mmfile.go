// Package mmfile provides platform-specific helpers for memory-mapping hive
// files. Mapping avoids a full-file copy for large hives; a caller that needs
// a mutable image (opening with transaction logs) copies the mapped bytes
// into its own buffer and unmaps.
package mmfile
