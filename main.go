// wifiaudit checks the security of the Wi-Fi network this machine is
// connected to and prints a heuristic risk report.
//
// Only audit networks you own or administer.
package main

import "github.com/dhbcndoe3062/vsosh-project-ib/commands"

func main() {
	commands.Execute()
}
