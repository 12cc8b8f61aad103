/*
Package ustring bridges byte-oriented UTF-8 text and fixed-width code-unit
strings for Go.

The package has two layers:

  - Codec primitives: classify the byte width of a UTF-8 character, decode
    characters to code points, encode code points back to bytes, and map
    between byte offsets and code-point indices.
  - [String]: a growable, null-terminated string of fixed-width code units
    (16-bit or 32-bit), constructed from UTF-8 and serialized back to it.

# Overview

Go strings index by byte. Many external systems — UTF-16 based protocols,
tokenizers, alignment tables produced by NLP pipelines — index by character
instead. This package makes that translation explicit and cheap:

	b := []byte("世界杯 World Cup!")
	n := ustring.CharCount(b)        // 14 characters
	idx := ustring.ByteToIndex(b, 9) // code-point index of a byte offset
	off := ustring.IndexToByte(b, 3) // byte offset of a code-point index

For repeated character-indexed access, decode once into a [String] and work
in code-unit space:

	us := ustring.NewUTF16("世界杯 World Cup!")
	us.Len()   // 14, in code units
	us.Unit(0) // 0x4E16 '世'
	us.Bytes() // the original UTF-8 bytes

# Code units and code points

One code point occupies exactly one code unit in this design: the 16-bit
instantiation does not model surrogate pairs, it simply truncates code
points above 0xFFFF, exactly like assigning to a C char16_t. Use
[CheckUTF16] to detect input that would lose information, or the 32-bit
instantiation to avoid the problem.

The codec supports the pre-restriction UTF-8 superset of up to 7-byte
sequences, so any value in [0, 0x7FFFFFFF] round-trips.

# Getting started

For byte-level work:
  - [CharWidth] / [LeadWidth] — byte width of the next character
  - [CharCount] — number of code points in a byte sequence
  - [ByteToIndex] / [IndexToByte] — single position lookups
  - [ByteIndexMap] / [IndexByteMap] / [DecodeAndMap] — full mapping arrays

For code-unit strings:
  - [NewUTF16] / [NewUTF32] — decode a Go string
  - [FromBytes] / [FromUnits] / [Fill] — other constructors
  - [String.Insert], [String.Erase], [String.Replace] — mutation
  - [String.Find] and friends — searching
  - [String.Bytes] / [String.String] — serialize back to UTF-8

# Malformed input

Decoding is deliberately lenient: a stray continuation byte in lead
position is treated as a literal one-byte code point rather than reported
as an error. Inputs are assumed well-formed; the fallback exists so that
slightly damaged text degrades instead of failing. No codec function
returns an error.

# Errors

Only two conditions are reported, both from [String] operations: a checked
position past the current length ([BoundsError], matches [ErrBounds]) and a
requested size above [MaxSize] ([SizeError], matches [ErrSize]). An
operation that would overflow does not mutate the string at all. Searches
and mappings signal absence with [NPos] instead of an error.

# Concurrency

A [String] exclusively owns its storage and performs no internal locking.
Concurrent mutation of the same instance must be serialized by the caller;
read-only operations may run concurrently only while no mutator does.
Distinct instances never share state.
*/
package ustring
