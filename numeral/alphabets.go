// alphabets.go - canonical zeroless alphabets (data-only).
//
// Purpose:
//   - Single source of truth for every bijective zeroless system: the
//     ordered symbol lists consumed by zeroless() in zeroless.go.
//   - Data here are immutable; conversion logic lives elsewhere.
//
// Contract:
//   - Order is significant and frozen: position p encodes the value p+1.
//     Never reorder an existing alphabet; output strings are part of the
//     public contract of this package.
//   - Alphabet length K determines the base of the system; any K ≥ 1 is
//     valid (DoubleCircled has 10, Latin 26, the kana 46 and 47).

package numeral

// lowerLatin covers a..z; beyond z the system continues with aa, ab, ….
var lowerLatin = []rune("abcdefghijklmnopqrstuvwxyz")

// upperLatin covers A..Z; beyond Z the system continues with AA, AB, ….
var upperLatin = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// hiraganaAiueo lists hiragana in gojūon order, with ん but without ゐ/ゑ.
var hiraganaAiueo = []rune("あいうえおかきくけこさしすせそたちつてとなにぬねのはひふへほまみむめもやゆよらりるれろわをん")

// hiraganaIroha lists hiragana in iroha order, with ゐ/ゑ but without ん.
var hiraganaIroha = []rune("いろはにほへとちりぬるをわかよたれそつねならむうゐのおくやまけふこえてあさきゆめみしゑひもせす")

// katakanaAiueo lists katakana in gojūon order, with ン but without ヰ/ヱ.
var katakanaAiueo = []rune("アイウエオカキクケコサシスセソタチツテトナニヌネノハヒフヘホマミムメモヤユヨラリルレロワヲン")

// katakanaIroha lists katakana in iroha order, with ヰ/ヱ but without ン.
var katakanaIroha = []rune("イロハニホヘトチリヌルヲワカヨタレソツネナラムウヰノオクヤマケフコエテアサキユメミシヱヒモセス")

// koreanJamo lists the 14 basic consonants.
var koreanJamo = []rune("ㄱㄴㄷㄹㅁㅂㅅㅇㅈㅊㅋㅌㅍㅎ")

// koreanSyllable lists the 14 reference syllable blocks.
var koreanSyllable = []rune("가나다라마바사아자차카타파하")

// bengaliLetters lists the 32 consonants used for alphabetic counting.
var bengaliLetters = []rune("কখগঘঙচছজঝঞটঠডঢণতথদধনপফবভমযরলশষসহ")

// circledNumbers covers ① through ㊿ (50 glyphs).
var circledNumbers = []rune("①②③④⑤⑥⑦⑧⑨⑩⑪⑫⑬⑭⑮⑯⑰⑱⑲⑳㉑㉒㉓㉔㉕㉖㉗㉘㉙㉚㉛㉜㉝㉞㉟㊱㊲㊳㊴㊵㊶㊷㊸㊹㊺㊻㊼㊽㊾㊿")

// doubleCircledNumbers covers ⓵ through ⓾ (10 glyphs).
var doubleCircledNumbers = []rune("⓵⓶⓷⓸⓹⓺⓻⓼⓽⓾")
