// Package hive implements zero-copy views over the on-disk cells of a
// Windows Registry hive: the REGF base block, HBIN containers, and the
// nk/vk/sk/lf/lh/li/ri/db cell payloads they hold.
//
// Every view type wraps a []byte slice of the backing hive buffer and reads
// fields on demand; none of them copy or own memory. Traversal methods that
// need to follow a relative cell offset (HCELL_INDEX) take the owning *Hive
// so they can resolve it against the full buffer.
package hive
