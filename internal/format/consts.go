// Package format holds the fixed-offset layout of the Windows Registry hive
// on-disk structures: the REGF base block, HBIN headers, and the cell framing
// word shared by every cell flavor (nk/vk/sk/lf/lh/li/ri/db). It decodes only
// enough of each structure to locate and validate the next one; the typed
// zero-copy views over decoded cell payloads live in package hive.
package format

var (
	// REGFSignature is the four-byte signature at the start of every hive file.
	REGFSignature = []byte{'r', 'e', 'g', 'f'}

	// HBINSignature is the four-byte signature at the beginning of each hive bin.
	HBINSignature = []byte{'h', 'b', 'i', 'n'}

	// NKSignature identifies an NK (key node) cell payload.
	NKSignature = []byte{'n', 'k'}
	// VKSignature identifies a VK (value key) cell payload.
	VKSignature = []byte{'v', 'k'}
	// SKSignature identifies a security descriptor cell.
	SKSignature = []byte{'s', 'k'}
	// LFSignature, LHSignature, LISignature identify subkey list variants.
	LFSignature = []byte{'l', 'f'}
	LHSignature = []byte{'l', 'h'}
	LISignature = []byte{'l', 'i'}
	// RISignature identifies an indirect (root index) subkey list.
	RISignature = []byte{'r', 'i'}
	// DBSignature identifies a big-data descriptor cell.
	DBSignature = []byte{'d', 'b'}
)

const (
	// HeaderSize is the size of the REGF base block, always one page.
	HeaderSize = 4096

	// HBINHeaderSize is the size of the HBIN header.
	HBINHeaderSize = 0x20

	// CellHeaderSize is the size of the signed cell-length word preceding every cell.
	CellHeaderSize = 4

	// HiveDataBase is the absolute file offset where the bin region starts.
	HiveDataBase = HeaderSize

	// HBINAlignment and CellAlignment are the required alignments for bins and cells.
	HBINAlignment = 0x1000
	CellAlignment = 8

	// InvalidOffset is the sentinel meaning "no reference".
	InvalidOffset = 0xFFFFFFFF

	// SignatureSize is the length in bytes of every two-character cell tag.
	SignatureSize = 2

	// -------------------------------------------------------------------
	// REGF base block field offsets (all little-endian).
	// -------------------------------------------------------------------
	REGFSignatureOffset    = 0x000
	REGFPrimarySeqOffset   = 0x004
	REGFSecondarySeqOffset = 0x008
	REGFTimeStampOffset    = 0x00C
	REGFMajorVersionOffset = 0x014
	REGFMinorVersionOffset = 0x018
	REGFTypeOffset         = 0x01C
	REGFFormatOffset       = 0x020
	REGFRootCellOffset     = 0x024
	REGFDataSizeOffset     = 0x028
	REGFClusterOffset      = 0x02C
	REGFFileNameOffset     = 0x030
	REGFFileNameSize       = 64
	REGFCheckSumOffset     = 0x1FC

	// REGFChecksumRegionLen and REGFChecksumDwords describe the checksummed region.
	REGFChecksumRegionLen = 508
	REGFChecksumDwords    = 127

	// -------------------------------------------------------------------
	// HBIN header field offsets.
	// -------------------------------------------------------------------
	HBINFileOffsetField = 0x04
	HBINSizeOffset      = 0x08

	// -------------------------------------------------------------------
	// Subkey list / value list common header.
	// -------------------------------------------------------------------
	IdxSignatureOffset = 0x00
	IdxCountOffset     = 0x02
	IdxListOffset      = 0x04
	IdxMinHeader       = IdxListOffset

	LIEntrySize    = 4 // one uint32 cell offset
	LFFHEntrySize  = 8 // CM_INDEX: uint32 cell + uint32 hint/hash
	OffsetFieldSize = 4

	// -------------------------------------------------------------------
	// NK (key node) field offsets.
	// -------------------------------------------------------------------
	NKFlagsOffset          = 0x02
	NKLastWriteOffset      = 0x04
	NKLastWriteLen         = 8
	NKAccessBitsOffset     = 0x0C
	NKParentOffset         = 0x10
	NKSubkeyCountOffset    = 0x14
	NKVolSubkeyCountOffset = 0x18
	NKSubkeyListOffset     = 0x1C
	NKVolSubkeyListOffset  = 0x20
	NKValueCountOffset     = 0x24
	NKValueListOffset      = 0x28
	NKSecurityOffset       = 0x2C
	NKClassNameOffset      = 0x30
	NKMaxNameLenOffset     = 0x34
	NKClassLenOffset       = 0x4A
	NKNameLenOffset        = 0x48
	NKNameOffset           = 0x4C
	NKFixedHeaderSize      = NKNameOffset
	NKFlagCompressedName   = 0x20

	// -------------------------------------------------------------------
	// VK (value key) field offsets.
	// -------------------------------------------------------------------
	VKNameLenOffset      = 0x02
	VKDataLenOffset      = 0x04
	VKDataOffOffset      = 0x08
	VKTypeOffset         = 0x0C
	VKFlagsOffset        = 0x10
	VKNameOffset         = 0x14
	VKFixedHeaderSize    = VKNameOffset
	VKFlagNameCompressed = 0x0001
	VKSmallDataMask      = 0x80000000
	VKDataLengthMask     = 0x7FFFFFFF

	// -------------------------------------------------------------------
	// DB (big data) field offsets.
	// -------------------------------------------------------------------
	DBSignatureOffset = 0x00
	DBSignatureLen    = SignatureSize
	DBCountOffset     = 0x02
	DBListOffset      = 0x04
	DBUnknown1Offset  = 0x08
	DBHeaderSize      = DBUnknown1Offset + 4
	DBMinSize         = DBHeaderSize
	DBChunkSize       = 16344 // bytes of payload per data block (0x3FD8)
	DBMinBlockCount   = 2
	DBMaxBlockCount   = 65535

	// -------------------------------------------------------------------
	// SK (security descriptor) field offsets.
	// -------------------------------------------------------------------
	SKSignatureOffset        = 0x00
	SKSignatureLen           = SignatureSize
	SKFlinkOffset            = 0x04
	SKBlinkOffset            = 0x08
	SKReferenceCountOffset   = 0x0C
	SKDescriptorLengthOffset = 0x10
	SKDescriptorOffset       = 0x14
	SKHeaderSize             = SKDescriptorOffset
	SKMinSize                = SKHeaderSize

	// -------------------------------------------------------------------
	// Value sizes / type codes.
	// -------------------------------------------------------------------
	DWORDSize = 4
	QWORDSize = 8

	RegNone                     uint32 = 0
	RegSZ                       uint32 = 1
	RegExpandSZ                 uint32 = 2
	RegBinary                   uint32 = 3
	RegDword                    uint32 = 4
	RegDwordBigEndian           uint32 = 5
	RegLink                     uint32 = 6
	RegMultiSZ                  uint32 = 7
	RegResourceList             uint32 = 8
	RegFullResourceDescriptor   uint32 = 9
	RegResourceRequirementsList uint32 = 10
	RegQword                    uint32 = 11

	// -------------------------------------------------------------------
	// Transaction log (.LOG1/.LOG2 new-scheme) field offsets. Old-scheme
	// .LOG files reuse the base block layout for their embedded copy and
	// have no HvLE entries.
	// -------------------------------------------------------------------
	LogEntryMagic           = "HvLE"
	LogEntrySignatureOffset = 0x00
	LogEntrySignatureLen    = 4
	LogEntrySizeOffset      = 0x04
	LogEntryFlagsOffset     = 0x08
	LogEntrySequenceOffset  = 0x0C
	LogEntryDataSizeOffset  = 0x10
	LogEntryHashOffset      = 0x14
	LogEntryPageCountOffset = 0x1C
	LogEntryPageDescOffset  = 0x20
	LogEntryPageDescSize    = 8 // uint32 offset + uint32 size, repeated PageCount times

	LogEntryDirtyFlag = 0x1

	// UTF-16 surrogate pair boundaries, used by the name/string decoders.
	UTF16HighSurrogateStart = 0xD800
	UTF16HighSurrogateEnd   = 0xDBFF
	UTF16LowSurrogateStart  = 0xDC00
	UTF16LowSurrogateEnd    = 0xDFFF
	UTF16SurrogateBase      = 0x10000
	UTF16ASCIIThreshold     = 0x80
)
