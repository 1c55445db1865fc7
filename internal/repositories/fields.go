package repositories

// Field selections per entity. Nested selections are kept shallow so that a
// list call never fans out into the backend's relation resolvers more than
// one level deep.
const (
	timestampFields = `createdAt updatedAt deletedAt`

	schoolFields = `id name email phone address city state pincode ownerName
dayStartTime dayEndTime lunchStartTime lunchEndTime bankName accountNumber
ifscCode gstNumber rtoLicenseNumber status ` + timestampFields

	carFields = `id schoolId carName model make year color registrationNumber
fuelType transmission seatingCapacity insuranceExpiry pucExpiry fitnessExpiry
driverId status ` + timestampFields

	driverFields = `id schoolId name email phone address licenseNumber
licenseIssueDate licenseExpiryDate experienceYears joiningDate salary
totalBookings completedBookings cancelledBookings rating status ` + timestampFields

	leaveFields  = `id driverId startDate endDate reason status`
	salaryFields = `id driverId amount month year paidOn status`

	courseFields = `id schoolId courseName courseType description syllabus
minsPerDay courseDays price enrolledStudents totalRevenue status ` + timestampFields

	serviceFields = `id serviceName category description duration features
includedServices status ` + timestampFields

	schoolServiceFields = `id schoolId serviceId licensePrice addonPrice status
service { id serviceName category status } ` + timestampFields

	userFields = `id name email contact1 contact2 address ` + timestampFields

	sessionFields = `id bookingId dayNumber sessionDate slot status attendance
driverNotes performanceRating cancellationReason cancelledAt`

	bookingServiceFields = `id bookingId schoolServiceId serviceType price
confirmationNumber status`

	bookingFields = `id bookingId schoolId userId carId courseId slot bookingDate
totalAmount status dateStatus notes
customer { id name email contact1 }
car { id carName registrationNumber }
course { id courseName courseDays price }
sessions { ` + sessionFields + ` }
services { ` + bookingServiceFields + ` } ` + timestampFields

	paymentFields = `id bookingId amount paymentMethod paymentDate status
transactionId installment ` + timestampFields

	servicePaymentFields = `id bookingServiceId amount paymentMethod paymentDate
status transactionId installment ` + timestampFields

	holidayFields = `id schoolId carId startDate endDate reason slots deletedById ` + timestampFields

	licenseApplicationFields = `id bookingServiceId schoolId userId
learnerLicenseNumber learnerTestDate drivingLicenseNumber drivingTestDate
testStatus status remarks ` + timestampFields
)
