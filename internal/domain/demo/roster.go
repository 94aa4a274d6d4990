package demo

import "github.com/wikiscout/scoutcore/internal/domain/model"

// Roster is the fixed demo team list, in rostered order.
func Roster() []model.Team {
	return []model.Team{
		{Number: 7236, Name: "Recharged Green"},
		{Number: 8393, Name: "Gearheads"},
		{Number: 9281, Name: "Overcharged"},
		{Number: 10331, Name: "BinaryBots"},
		{Number: 11115, Name: "Gluten Free"},
		{Number: 11260, Name: "Up Next!"},
		{Number: 12456, Name: "Circuit Breakers"},
		{Number: 13201, Name: "TechnoWizards"},
		{Number: 14078, Name: "Sigma Bots"},
		{Number: 14523, Name: "RoboKnights"},
		{Number: 15227, Name: "Mech Mayhem"},
		{Number: 16072, Name: "Coyote Coders"},
		{Number: 16340, Name: "Wired Warriors"},
		{Number: 17305, Name: "Steel Stingers"},
		{Number: 18092, Name: "Quantum Leap"},
		{Number: 18456, Name: "Iron Eagles"},
		{Number: 19012, Name: "Byte Force"},
		{Number: 19876, Name: "Phoenix Rising"},
		{Number: 20145, Name: "Titan Tech"},
		{Number: 20503, Name: "NovaDroids"},
		{Number: 21087, Name: "Velocity"},
		{Number: 22190, Name: "Gear Grinders"},
		{Number: 23456, Name: "Flash Forge"},
		{Number: 24601, Name: "Robovolt"},
	}
}
