package events

// DefaultRecords returns the seed event list used when nothing has been stored.
func DefaultRecords() []Record {
	return []Record{
		{
			ID: "e1", Name: "Annual Blood Donation Camp",
			Date: "2025-08-15", Time: "10:00 AM", Venue: "NLJIET Auditorium",
			Description: "Our flagship event to contribute to the community blood bank. Your single drop can save a life! We aim to collect over 200 units this year in partnership with Civil Hospital, Ahmedabad. Join us and be a lifesaver.",
			Kind:        KindUpcoming,
		},
		{
			ID: "e2", Name: "Youth Leadership Summit: Empowering Tomorrow",
			Date: "2025-09-22", Time: "09:30 AM", Venue: "Gujarat University Convention Centre",
			Description: "A day-long summit featuring prominent speakers from various industries, focusing on leadership, innovation, and social entrepreneurship. Network with young leaders and gain valuable insights. Registration required.",
			Kind:        KindUpcoming,
		},
		{
			ID: "e3", Name: "Clean Sabarmati Drive 4.0",
			Date: "2025-10-02", Time: "07:00 AM", Venue: "Sabarmati Riverfront, Phase 1",
			Description: "Join us on Gandhi Jayanti for our 4th annual clean-up drive along the Sabarmati Riverfront. Let's work together to keep our city clean and green. Gloves and bags will be provided. All volunteers welcome!",
			Kind:        KindUpcoming,
		},
		{
			ID: "e4", Name: "Digital Literacy Workshop for Seniors",
			Date: "2025-11-10", Time: "02:00 PM", Venue: "Vastrapur Community Hall",
			Description: "A series of interactive workshops designed to help senior citizens become more comfortable with smartphones, internet basics, and online safety. Volunteers are needed to assist participants one-on-one.",
			Kind:        KindUpcoming,
		},
		{
			ID: "e5", Name: "Winter Warmth: Blanket Distribution Drive",
			Date: "2025-12-15", Time: "07:00 PM", Venue: "Various Slum Areas in Ahmedabad",
			Description: "As winter approaches, we will be distributing blankets to the homeless and needy across Ahmedabad. Your donations of new or gently used blankets are highly appreciated. Join our team for the distribution night.",
			Kind:        KindUpcoming,
		},

		{
			ID: "p1", Name: "Basic First Aid & CPR Training",
			Date: "2025-04-12", Time: "09:00 AM", Venue: "NLJIET Seminar Hall",
			Description: "We hosted a comprehensive first aid and CPR training session, certified by St. John Ambulance. Participants learned vital life-saving skills. It was an impactful session for over 80 attendees.",
			Kind:        KindPast,
		},
		{
			ID: "p2", Name: "Career Guidance & Resume Building Session",
			Date: "2025-03-01", Time: "03:00 PM", Venue: "Online (Google Meet)",
			Description: "An online session focused on navigating career paths, preparing effective resumes, and acing interviews. Industry experts shared their knowledge, benefiting over 150 students from various colleges.",
			Kind:        KindPast,
		},
		{
			ID: "p3", Name: "Joy of Giving - School Supply Drive",
			Date: "2025-01-26", Time: "11:00 AM", Venue: "Slum Schools near SG Highway",
			Description: "On Republic Day, we distributed school supplies, notebooks, and stationery to underprivileged children, fostering education and hope. The smiles on their faces made it all worthwhile.",
			Kind:        KindPast,
		},
		{
			ID: "p4", Name: "Diwali Milan & Fellowship",
			Date: "2024-10-30", Time: "07:00 PM", Venue: "Club House, Thaltej",
			Description: "A vibrant Diwali fellowship event filled with cultural performances, delicious food, and fun games. It was a wonderful opportunity for members to bond and celebrate the festival of lights together.",
			Kind:        KindPast,
		},
		{
			ID: "p5", Name: "Awareness Campaign: Say No To Plastic",
			Date: "2024-09-18", Time: "04:00 PM", Venue: "Manekchowk & Law Garden",
			Description: "Our volunteers conducted an extensive awareness campaign about the harmful effects of single-use plastics in high-footfall areas of Ahmedabad, distributing eco-friendly bags and engaging with citizens.",
			Kind:        KindPast,
		},
	}
}
