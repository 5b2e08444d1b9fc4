package interceptor

import "strconv"

// StartedMessage renders the pre-hook line:
//
//	Account.reset has started its execution
//	Account.deposit has started its execution with parameters: {amount=50}
func StartedMessage(cc CallContext) string {
	msg := cc.QualifiedName() + " has started its execution"
	if len(cc.Params) == 0 {
		return msg
	}
	return msg + " with parameters: " + cc.FormatParams()
}

// EndedMessage renders the post-hook line:
//
//	Account.reset has ended its execution after 3ms
//	Account.deposit has ended its execution after 12ms with result: [true]
func EndedMessage(cc CallContext, elapsedMillis int64, result Value) string {
	msg := cc.QualifiedName() + " has ended its execution after " + strconv.FormatInt(elapsedMillis, 10) + "ms"
	if !result.Present() {
		return msg
	}
	return msg + " with result: [" + result.String() + "]"
}
