package imxrt_test

import (
	"testing"

	"github.com/q0jt/go-imxrt/imxrt"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	imxrt.SetLogger(zap.New(core))
	defer imxrt.SetLogger(nil)

	if _, err := imxrt.NewBlock(evkConfig()); err != nil {
		t.Fatal(err)
	}
	if logs.FilterMessage("built configuration block").Len() != 1 {
		t.Errorf("entries: %v", logs.All())
	}

	imxrt.SetLogger(nil)
	if imxrt.Logger() == nil {
		t.Fatal("nil logger")
	}
}
