package renderer

// Document は描画済みの1ファイル (スライド HTML または共有スタイルシート) です。
// 同じ入力からは常に同じ内容が得られます。
type Document struct {
	Name    string
	Content []byte
}

// DocumentSet はスライド番号順に並んだスライドと共有スタイルシートの組です。
type DocumentSet struct {
	Title      string
	Slides     []Document
	Stylesheet Document
}
