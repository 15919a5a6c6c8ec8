package main

import "github.com/EekshaHollaR/ecommerce-database-cursor-ai/cmd"

func main() {
	cmd.Execute()
}
