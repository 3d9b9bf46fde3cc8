// Package kana provides the script classification and conversion helpers
// used when normalizing a user's reading before lattice construction
// (surface resolution and sentinel substitution).
package kana

import (
	"github.com/kotaroooo0/gojaconv/jaconv"
)

// ToHiragana converts any katakana runes in s to hiragana, leaving other
// runes untouched.
func ToHiragana(s string) string {
	return jaconv.KatakanaToHiragana(s)
}

// ToKatakana converts any hiragana runes in s to katakana, leaving other
// runes untouched.
func ToKatakana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if IsHiragana(r) {
			// U+3041..U+3096 map one-to-one onto U+30A1..U+30F6.
			runes[i] = r + 0x60
		}
	}
	return string(runes)
}

// IsHiragana reports whether r falls in the hiragana block.
func IsHiragana(r rune) bool {
	return r >= 0x3041 && r <= 0x3096
}

// IsKatakana reports whether r falls in the katakana block.
func IsKatakana(r rune) bool {
	return r >= 0x30A1 && r <= 0x30FA
}

// IsAllHiragana reports whether every rune in s is hiragana. An empty
// string is not considered all-hiragana.
func IsAllHiragana(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsHiragana(r) {
			return false
		}
	}
	return true
}

// IsAllKatakana reports whether every rune in s is katakana. An empty
// string is not considered all-katakana.
func IsAllKatakana(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsKatakana(r) {
			return false
		}
	}
	return true
}

// isAllHalfwidthNumericSymbol reports whether every rune in s is an ASCII
// printable character (U+0021..U+007E) or a space.
func isAllHalfwidthNumericSymbol(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r >= 0x21 && r <= 0x7E) && r != ' ' {
			return false
		}
	}
	return true
}

// IsAllHalfwidthNumericSymbol is the exported form of
// isAllHalfwidthNumericSymbol.
func IsAllHalfwidthNumericSymbol(s string) bool {
	return isAllHalfwidthNumericSymbol(s)
}

// isFullwidthDigit covers U+FF10..U+FF19 (fullwidth 0-9).
func isFullwidthDigit(r rune) bool {
	return r >= 0xFF10 && r <= 0xFF19
}

// isAllFullwidthNumericSymbol reports whether every rune in s is fullwidth
// ASCII (U+FF01..U+FF5E), a fullwidth digit, or IDEOGRAPHIC SPACE (U+3000).
func isAllFullwidthNumericSymbol(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r >= 0xFF01 && r <= 0xFF5E) && !isFullwidthDigit(r) && r != 0x3000 {
			return false
		}
	}
	return true
}

// IsAllFullwidthNumericSymbol is the exported form of
// isAllFullwidthNumericSymbol.
func IsAllFullwidthNumericSymbol(s string) bool {
	return isAllFullwidthNumericSymbol(s)
}

// anyDigit reports whether s contains at least one ASCII digit or
// fullwidth digit.
func anyDigit(s string) bool {
	for _, r := range s {
		if (r >= '0' && r <= '9') || isFullwidthDigit(r) {
			return true
		}
	}
	return false
}

// AnyDigit is the exported form of anyDigit.
func AnyDigit(s string) bool {
	return anyDigit(s)
}

// ToRomaji renders hiragana/katakana reading as Hepburn romaji, mirroring
// how a reading-form token filter would present romanized output.
func ToRomaji(s string) string {
	return jaconv.ToHebon(jaconv.KatakanaToHiragana(s))
}
