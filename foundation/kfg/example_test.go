package kfg_test

import (
	"fmt"

	"github.com/felpofo/kfg/foundation/kfg"
)

func ExampleParseString() {
	doc, err := kfg.ParseString("server::port = 8080\nserver::host = 'localhost'\n")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(doc.Inline())
	// Output: { server: { host: "localhost", port: 8080 } }
}

func ExampleDiagnose() {
	src := []byte("a = [1, 2\n")
	_, err := kfg.Parse(src)
	fmt.Println(kfg.Diagnose(src, err))
	// Output:
	// line 1, character 4: missing CloseBracket to close OpenBracket
	//   a = [1, 2
	//       ^
}
