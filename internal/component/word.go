// component/word.go
package component

// Word — падающее слово.
type Word struct {
	Token         string // uuid, выдаётся при спавне, уникален среди живых слов
	Text          string // всегда в нижнем регистре
	MatchedPrefix string // набранный игроком префикс; пустой, если слово не подсвечено
}
