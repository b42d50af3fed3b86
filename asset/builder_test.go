// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package asset

import (
	"bytes"
	"testing"
	"time"
)

func TestAddAndWrite(t *testing.T) {
	builder := NewBuilder(Header{
		Author:      "devblok",
		DateCreated: time.Now().Unix(),
		Version:     1,
	})

	builder.Add("test", bytes.NewReader([]byte("idunvovkjnreovmegihjbrqlkmfrjnb")))
	builder.Add("test2", bytes.NewReader([]byte("idunvovkjnreovmsdvwrvnervnreegihjbrqlkmfrjnb")))

	if len(builder.files) != 2 {
		t.Error("incorrect number of files present")
	}

	var buf bytes.Buffer
	num, err := builder.WriteTo(&buf)
	if err != nil {
		t.Error(err)
	}
	if num != int64(buf.Len()) {
		t.Errorf("reported %d written bytes, buffer holds %d", num, buf.Len())
	}
	if len(builder.files) != 0 {
		t.Error("builder not drained after write")
	}
}
