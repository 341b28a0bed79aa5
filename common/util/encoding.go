
//此源码被清华学神尹成大魔王专业翻译分析并修改
//尹成QQ77025077
//尹成微信18510341407
//尹成所在QQ群721929980
//尹成邮箱 yinc13@mails.tsinghua.edu.cn
//尹成毕业于清华大学,微软区块链领域全球最有价值专家
//https://mvp.microsoft.com/zh-cn/PublicProfile/4033620
/*
版权所有IBM公司。保留所有权利。

SPDX许可证标识符：Apache-2.0
**/


package util

import (
	"encoding/base64"
	"encoding/json"
	"unicode/utf8"

	"github.com/pkg/errors"
)

const replacementChar = "\uFFFD"

//StringToBytes返回msg的UTF-8编码。每个无效的UTF-8序列都被替换为
//一个U+FFFD，因此结果总是有效的UTF-8。
func StringToBytes(msg string) []byte {
	if utf8.ValidString(msg) {
		return []byte(msg)
	}
	out := make([]byte, 0, len(msg)+len(replacementChar))
	for i := 0; i < len(msg); {
		r, size := utf8.DecodeRuneInString(msg[i:])
		if r == utf8.RuneError && size == 1 {
			out = append(out, replacementChar...)
		} else {
			out = append(out, msg[i:i+size]...)
		}
		i += size
	}
	return out
}

//ToBytes与StringToBytes编码相同，但逐字节复制到新分配的
//ByteArray中。
func ToBytes(s string) ByteArray {
	buf := StringToBytes(s)
	out := make(ByteArray, 0, len(buf))
	for i := 0; i < len(buf); i++ {
		out = append(out, buf[i])
	}
	return out
}

//ByteArray是一个有序的字节值序列（每个0-255）。与[]byte不同，
//它在JSON中编码为数字数组，即JavaScript链码使用的number[]。
//解码时接受数字数组或base64字符串。
type ByteArray []byte

func (b ByteArray) MarshalJSON() ([]byte, error) {
	if b == nil {
		return []byte("null"), nil
	}
	ints := make([]int, len(b))
	for i, v := range b {
		ints[i] = int(v)
	}
	return json.Marshal(ints)
}

func (b *ByteArray) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*b = nil
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return errors.Wrap(err, "invalid base64 byte array")
		}
		*b = raw
		return nil
	}

	var ints []int
	if err := json.Unmarshal(data, &ints); err != nil {
		return errors.Wrap(err, "byte array must be a number array or a base64 string")
	}
	out := make(ByteArray, len(ints))
	for i, v := range ints {
		if v < 0 || v > 255 {
			return errors.Errorf("byte array element %d out of range: %d", i, v)
		}
		out[i] = byte(v)
	}
	*b = out
	return nil
}
