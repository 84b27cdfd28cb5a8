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

package log

// Field represents a single structured logging field.
type Field struct {
	Key   string
	Value any
}

// String creates a string Field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an integer Field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a boolean Field.
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Error creates a Field carrying an error value.
func Error(err error) Field {
	return Field{Key: "error", Value: err}
}

// Any creates a Field with an arbitrary value.
func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}
