
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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindMissingElements(t *testing.T) {
	all := []string{"a", "b", "c", "d"}
	some := []string{"b", "c"}
	assert.Equal(t, []string{"a", "d"}, FindMissingElements(all, some))
	assert.Nil(t, FindMissingElements([]string{"b"}, some))
	assert.Nil(t, FindMissingElements(nil, some))
}

func TestToChaincodeArgs(t *testing.T) {
	expected := [][]byte{[]byte("foo"), []byte("bar")}
	assert.Equal(t, expected, ToChaincodeArgs("foo", "bar"))
	assert.Empty(t, ToChaincodeArgs())
}
