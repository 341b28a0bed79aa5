
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


package manager

import (
	"context"

	"github.com/carbonaccounting/utility-emissions-channel/chaincode/request/manager/model"
	"github.com/carbonaccounting/utility-emissions-channel/common/flogging"
	"github.com/looplab/fsm"
)

const (
	eventUpdate = "update"
	eventFinish = "finish"
)

//requestLifecycle：请求状态机
//
//	PROCESSING --update--> PROCESSING
//	PROCESSING --finish--> FINISHED
//
//FINISHED不接受任何事件。
type requestLifecycle struct {
	fsm *fsm.FSM
}

func newRequestLifecycle(requestID string, state model.RequestState, logger *flogging.ChaincodeLogger) *requestLifecycle {
	if state == "" {
		state = model.RequestStatePROCESSING
	}
	processing := string(model.RequestStatePROCESSING)
	finished := string(model.RequestStateFINISHED)

	f := fsm.NewFSM(
		string(state),
		fsm.Events{
			{Name: eventUpdate, Src: []string{processing}, Dst: processing},
			{Name: eventFinish, Src: []string{processing}, Dst: finished},
		},
		fsm.Callbacks{
			"enter_" + finished: func(_ context.Context, e *fsm.Event) {
				logger.Infof("#lifecycle requestId = %s %s -> %s", requestID, e.Src, e.Dst)
			},
		},
	)
	return &requestLifecycle{fsm: f}
}

//canUpdate报告请求是否仍接受阶段更新
func (l *requestLifecycle) canUpdate() bool {
	return l.fsm.Can(eventUpdate)
}

func (l *requestLifecycle) finish(ctx context.Context) error {
	return l.fsm.Event(ctx, eventFinish)
}

func (l *requestLifecycle) state() model.RequestState {
	return model.RequestState(l.fsm.Current())
}
