//go:build js && wasm

/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package browser binds the authentication flow to the browser document and the host SDK loaded in it.
package browser

import (
	"context"
	"syscall/js"

	"github.com/asgardeo/teamsauth/internal/host"
)

// promiseResult is the settled value of a JavaScript promise.
type promiseResult struct {
	value    js.Value
	rejected bool
}

// await blocks until promise settles or ctx is done. A rejection is classified with host.ClassifyRejection.
func await(ctx context.Context, promise js.Value) (js.Value, error) {
	if promise.Type() != js.TypeObject || promise.Get("then").Type() != js.TypeFunction {
		return promise, nil
	}
	settled := make(chan promiseResult, 1)

	onFulfilled := js.FuncOf(func(_ js.Value, args []js.Value) any {
		settled <- promiseResult{value: firstArg(args)}
		return nil
	})
	onRejected := js.FuncOf(func(_ js.Value, args []js.Value) any {
		settled <- promiseResult{value: firstArg(args), rejected: true}
		return nil
	})
	defer onFulfilled.Release()
	defer onRejected.Release()

	if _, err := invoke(func() js.Value { return promise.Call("then", onFulfilled, onRejected) }); err != nil {
		return js.Undefined(), err
	}

	select {
	case result := <-settled:
		if result.rejected {
			return js.Undefined(), host.ClassifyRejection(rejectionMessage(result.value))
		}
		return result.value, nil
	case <-ctx.Done():
		return js.Undefined(), ctx.Err()
	}
}

// invoke runs fn and turns a JavaScript exception thrown by it into an error classified with
// host.ClassifyRejection. Other panics are propagated.
func invoke(fn func() js.Value) (result js.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			jsErr, ok := r.(js.Error)
			if !ok {
				panic(r)
			}
			result = js.Undefined()
			err = host.ClassifyRejection(rejectionMessage(jsErr.Value))
		}
	}()
	return fn(), nil
}

func firstArg(args []js.Value) js.Value {
	if len(args) == 0 {
		return js.Undefined()
	}
	return args[0]
}

// rejectionMessage extracts the message of a rejection reason, which may be an Error or a plain string.
func rejectionMessage(reason js.Value) string {
	switch reason.Type() {
	case js.TypeString:
		return reason.String()
	case js.TypeObject:
		if message := reason.Get("message"); message.Type() == js.TypeString {
			return message.String()
		}
		return js.Global().Get("String").Invoke(reason).String()
	default:
		return ""
	}
}
