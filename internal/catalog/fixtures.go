package catalog

import "time"

// Subjects is the list offered in discovery filters.
var Subjects = []string{
	"Mathematics",
	"Physics",
	"Chemistry",
	"Biology",
	"Computer Science",
	"English",
	"History",
	"Psychology",
	"Statistics",
	"Engineering",
	"Foreign Languages",
	"Economics",
	"Business",
	"Art",
}

// FixtureTutors returns the built-in tutor listings used when no database
// is configured.
func FixtureTutors() []Tutor {
	return []Tutor{
		{
			ID:           "1",
			Name:         "Dr. Sarah Johnson",
			AvatarURL:    "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Rating:       4.9,
			ReviewCount:  56,
			Price:        40,
			Subjects:     []string{"Mathematics", "Calculus", "Algebra"},
			Education:    "Ph.D. in Mathematics, Stanford University",
			Location:     "San Francisco, CA",
			Distance:     2.5,
			SessionTypes: []SessionType{SessionOnline, SessionInPerson},
			Availability: []string{"Weekdays", "Evenings"},
			Description:  "Experienced math professor with over 10 years of teaching and tutoring experience. Specializes in calculus and advanced math topics.",
		},
		{
			ID:           "2",
			Name:         "Prof. Michael Chen",
			AvatarURL:    "https://images.pexels.com/photos/614810/pexels-photo-614810.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Rating:       4.8,
			ReviewCount:  42,
			Price:        45,
			Subjects:     []string{"Physics", "Engineering", "Mathematics"},
			Education:    "Ph.D. in Physics, MIT",
			Location:     "San Francisco, CA",
			Distance:     3.2,
			SessionTypes: []SessionType{SessionOnline, SessionInPerson},
			Availability: []string{"Weekends", "Evenings"},
			Description:  "Physics professor with expertise in classical mechanics, electromagnetism, and quantum physics. Teaches at both undergraduate and graduate levels.",
		},
		{
			ID:           "3",
			Name:         "Jamie Rodriguez",
			AvatarURL:    "https://images.pexels.com/photos/762020/pexels-photo-762020.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Rating:       4.7,
			ReviewCount:  38,
			Price:        35,
			Subjects:     []string{"Computer Science", "Programming", "Data Structures"},
			Education:    "M.S. in Computer Science, UC Berkeley",
			Location:     "Oakland, CA",
			Distance:     5.8,
			SessionTypes: []SessionType{SessionOnline},
			Availability: []string{"Weekdays", "Weekends", "Evenings"},
			Description:  "Software engineer and CS tutor specializing in algorithms, data structures, and programming languages including Python, Java, and C++.",
		},
		{
			ID:           "4",
			Name:         "Alex Thompson",
			AvatarURL:    "https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Rating:       4.5,
			ReviewCount:  29,
			Price:        30,
			Subjects:     []string{"Biology", "Chemistry", "Organic Chemistry"},
			Education:    "M.D., Harvard Medical School",
			Location:     "San Jose, CA",
			Distance:     8.7,
			SessionTypes: []SessionType{SessionOnline, SessionInPerson},
			Availability: []string{"Weekends"},
			Description:  "Medical student with a strong background in biology and chemistry. Specializes in helping pre-med students prepare for their MCAT exams.",
		},
		{
			ID:           "5",
			Name:         "Dr. Lisa Patel",
			AvatarURL:    "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Rating:       5.0,
			ReviewCount:  62,
			Price:        50,
			Subjects:     []string{"Statistics", "Data Science", "R Programming"},
			Education:    "Ph.D. in Statistics, UCLA",
			Location:     "San Francisco, CA",
			Distance:     1.2,
			SessionTypes: []SessionType{SessionOnline, SessionInPerson},
			Availability: []string{"Weekdays", "Evenings"},
			Description:  "Statistician and data scientist with expertise in experimental design, statistical analysis, and machine learning techniques.",
		},
		{
			ID:           "6",
			Name:         "David Wilson",
			AvatarURL:    "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Rating:       4.6,
			ReviewCount:  34,
			Price:        38,
			Subjects:     []string{"English Literature", "Writing", "Grammar"},
			Education:    "M.A. in English Literature, NYU",
			Location:     "Berkeley, CA",
			Distance:     4.3,
			SessionTypes: []SessionType{SessionOnline, SessionInPerson},
			Availability: []string{"Weekdays", "Weekends"},
			Description:  "Published author and English teacher with a passion for literature and creative writing. Helps students improve their writing skills and literary analysis.",
		},
	}
}

// FixtureStudyGroups returns the built-in study group listings used when no
// database is configured.
func FixtureStudyGroups() []StudyGroup {
	return []StudyGroup{
		{
			ID:               "1",
			Name:             "Calculus Study Group",
			Subject:          "Mathematics",
			Description:      "We meet weekly to discuss calculus problems and prepare for exams. All levels welcome!",
			Location:         "University Library, Room 302",
			Distance:         0.5,
			Members:          5,
			MaxMembers:       8,
			MeetingFrequency: "Weekly",
			MeetingDays:      []string{"Tuesday", "Thursday"},
			NextMeeting:      time.Date(2025, time.July, 16, 16, 0, 0, 0, time.Local),
			StudyLevel:       "Undergraduate",
			CreatedBy: GroupCreator{
				Name:      "Michael Chen",
				AvatarURL: "https://images.pexels.com/photos/614810/pexels-photo-614810.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			},
		},
		{
			ID:               "2",
			Name:             "Biology Research Group",
			Subject:          "Biology",
			Description:      "Advanced group focusing on genetic research topics. We discuss recent papers and research methodologies.",
			Location:         "Science Building, Room 120",
			Distance:         1.2,
			Members:          6,
			MaxMembers:       6,
			MeetingFrequency: "Bi-weekly",
			MeetingDays:      []string{"Wednesday"},
			NextMeeting:      time.Date(2025, time.July, 18, 15, 0, 0, 0, time.Local),
			StudyLevel:       "Graduate",
			CreatedBy: GroupCreator{
				Name:      "Alex Thompson",
				AvatarURL: "https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			},
		},
		{
			ID:               "3",
			Name:             "Programming & Algorithms",
			Subject:          "Computer Science",
			Description:      "Group focused on algorithm practice and coding challenges. Great for interview preparation!",
			Location:         LocationOnline,
			Distance:         0,
			Members:          8,
			MaxMembers:       12,
			MeetingFrequency: "Weekly",
			MeetingDays:      []string{"Saturday"},
			NextMeeting:      time.Date(2025, time.July, 20, 10, 0, 0, 0, time.Local),
			StudyLevel:       "All Levels",
			CreatedBy: GroupCreator{
				Name:      "Jamie Rodriguez",
				AvatarURL: "https://images.pexels.com/photos/762020/pexels-photo-762020.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			},
		},
		{
			ID:               "4",
			Name:             "Physics Problem Solving",
			Subject:          "Physics",
			Description:      "We tackle challenging physics problems together and discuss theoretical concepts.",
			Location:         "Coffee Shop Near Campus",
			Distance:         0.8,
			Members:          4,
			MaxMembers:       10,
			MeetingFrequency: "Weekly",
			MeetingDays:      []string{"Monday", "Friday"},
			NextMeeting:      time.Date(2025, time.July, 21, 17, 30, 0, 0, time.Local),
			StudyLevel:       "Undergraduate",
			CreatedBy: GroupCreator{
				Name:      "Lisa Patel",
				AvatarURL: "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			},
		},
		{
			ID:               "5",
			Name:             "English Literature Club",
			Subject:          "English",
			Description:      "We read and discuss classic and modern literature. Current focus is on post-modern American novels.",
			Location:         "Community Center, Room 5",
			Distance:         2.3,
			Members:          7,
			MaxMembers:       15,
			MeetingFrequency: "Monthly",
			MeetingDays:      []string{"Sunday"},
			NextMeeting:      time.Date(2025, time.July, 22, 14, 0, 0, 0, time.Local),
			StudyLevel:       "All Levels",
			CreatedBy: GroupCreator{
				Name:      "David Wilson",
				AvatarURL: "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			},
		},
		{
			ID:               "6",
			Name:             "Data Science Workshop",
			Subject:          "Statistics",
			Description:      "Hands-on workshop for learning data analysis techniques and tools like Python, R, and SQL.",
			Location:         "University Tech Hub",
			Distance:         1.1,
			Members:          10,
			MaxMembers:       15,
			MeetingFrequency: "Weekly",
			MeetingDays:      []string{"Wednesday", "Saturday"},
			NextMeeting:      time.Date(2025, time.July, 23, 13, 0, 0, 0, time.Local),
			StudyLevel:       "Intermediate",
			CreatedBy: GroupCreator{
				Name:      "Sarah Johnson",
				AvatarURL: "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			},
		},
	}
}
