package sources

// Default returns the built-in catalog: Dazai Osamu's major works as
// distributed by Aozora Bunko. Used when no sources manifest is given.
func Default() []Work {
	return []Work{
		{Title: "人間失格", URL: "https://www.aozora.gr.jp/cards/000035/files/301_ruby_5915.zip"},
		{Title: "走れメロス", URL: "https://www.aozora.gr.jp/cards/000035/files/1567_ruby_4948.zip"},
		{Title: "斜陽", URL: "https://www.aozora.gr.jp/cards/000035/files/1565_ruby_8220.zip"},
		{Title: "ヴィヨンの妻", URL: "https://www.aozora.gr.jp/cards/000035/files/2253_ruby_1031.zip"},
		{Title: "女生徒", URL: "https://www.aozora.gr.jp/cards/000035/files/275_ruby_1532.zip"},
		{Title: "駈込み訴え", URL: "https://www.aozora.gr.jp/cards/000035/files/277_ruby_33097.zip"},
		{Title: "富嶽百景", URL: "https://www.aozora.gr.jp/cards/000035/files/270_ruby_1164.zip"},
		{Title: "畜犬談", URL: "https://www.aozora.gr.jp/cards/000035/files/246_ruby_1636.zip"},
		{Title: "津軽", URL: "https://www.aozora.gr.jp/cards/000035/files/2282_ruby_1996.zip"},
	}
}
