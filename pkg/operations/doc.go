//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package operations describes the edits that can be undone and redone.
// Each operation records where it happened and what it needs to reverse
// itself: Perform applies the edit to a buffer, Revert applies its inverse.
// Both leave the buffer's cursor at the site of the change.
package operations
