package api

import (
	"errors"

	"github.com/huynhanx03/go-linear/internal/simulator"
	"github.com/huynhanx03/go-linear/pkg/common/apperr"
	"github.com/huynhanx03/go-linear/pkg/common/http/response"
	"github.com/huynhanx03/go-linear/pkg/datastructs/linear"
)

// toAppError maps a failed command onto a response code. The envelope message
// names the command and the failed action; the status line and the unchanged
// state travel as data.
func toAppError(name string, err error, res *simulator.Result) *apperr.AppError {
	code := codeOf(err)
	status := response.HTTPStatus(code)

	cmd, parseErr := simulator.ParseCommand(name)
	if parseErr != nil {
		return apperr.NewError(name, code, apperr.MsgUnknown, status, err).WithData(res)
	}
	if code == response.CodeInternalServer {
		return apperr.MapError(cmd.Name, err, code, apperr.MsgProcessFailed, status)
	}
	return apperr.MapError(cmd.Name, err, code, actionMessage(cmd.Op, err), status).WithData(res)
}

func codeOf(err error) int {
	if errors.Is(err, simulator.ErrUnknownCommand) {
		return response.CodeUnknownCommand
	}
	switch linear.KindOf(err) {
	case linear.KindOverflow:
		return response.CodeOverflow
	case linear.KindUnderflow:
		return response.CodeUnderflow
	case linear.KindInvalidValue:
		return response.CodeInvalidValue
	}
	return response.CodeInternalServer
}

func actionMessage(op simulator.Op, err error) string {
	switch op {
	case simulator.OpInsert:
		if linear.IsInvalidValue(err) {
			return apperr.MsgParseFailed
		}
		return apperr.MsgInsertFailed
	case simulator.OpRemove:
		return apperr.MsgRemoveFailed
	case simulator.OpPeek:
		return apperr.MsgPeekFailed
	case simulator.OpSetMode:
		return apperr.MsgModeFailed
	}
	return apperr.MsgProcessFailed
}
