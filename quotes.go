// quotes.go

/**
 * Copyright (C) Naren Yellavula - All Rights Reserved
 *
 * This source code is protected under international copyright law.  All rights
 * reserved and protected by the copyright holders.
 * This file is confidential and only available to authorized individuals with the
 * permission of the copyright holders.  If you encounter this file and do not have
 * permission, please contact the copyright holders and delete this file.
 * The quotations are taken from the public domain and attributed to respective creators.
 */

package main

import (
	"math/rand"
)

var quotes = []string{
	"An algorithm must be seen to be believed",
	"Premature optimization is the root of all evil",
	"Bad programmers worry about the code. Good programmers worry about data structures",
	"Smart data structures and dumb code works a lot better than the other way around",
	"Get your data structures correct first, and the rest of the program will write itself",
	"Algorithms + Data Structures = Programs",
	"A tree that stays balanced never grows tall",
	"When in doubt, use brute force",
	"The cheapest, fastest, and most reliable components are those that aren't there",
	"Deleted code is debugged code",
	"Simplicity is prerequisite for reliability",
	"Make it work, make it right, make it fast",
	"Measure. Don't tune for speed until you've measured",
	"Every rotation is a constant-time apology for a careless insert",
	"Recursion is the root of computation since it trades description for time",
	"If you optimize everything, you will always be unhappy",
}

// GetRandomQuote returns a random quote for the TUI footer.
func GetRandomQuote() string {
	return quotes[rand.Intn(len(quotes))]
}
