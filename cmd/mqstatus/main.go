/*
Copyright © 2025 the mqstatus authors
SPDX-License-Identifier: Apache-2.0
*/
package main

import "github.com/mqops/mqstatus/pkg/cli"

func main() {
	cli.Execute()
}
